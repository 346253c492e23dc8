package telegram

// User-facing reply texts. Kept in one place so wording changes do not touch
// routing logic.
const (
	welcomeText = "Hi! I bundle messages into records you can share.\n" +
		"Send /new_record to start one, then forward or type the messages you want in it.\n" +
		"Send /end_record when you are done and you will get a link anyone can open."

	helpText = "Commands:\n" +
		"/new_record - start composing a record\n" +
		"/end_record - seal the record and get a share link\n" +
		"/get_record <id> - fetch a record by its number\n" +
		"/help - this message\n\n" +
		"While a record is open, every message you send is added to it."

	alreadyRecordingText = "You already have a record in progress. Finish it with /end_record first."

	recordingStartedText = "Recording. Everything you send now goes into the record. Finish with /end_record."

	notRecordingText = "No record in progress. Start one with /new_record."

	recordGoneText = "That record no longer accepts messages. Start a fresh one with /new_record."

	recordNotFoundText = "Record not found."

	appendedTextFmt = "Added. The record now holds %d message(s)."

	sealedTextFmt = "Done! The record holds %d message(s).\nShare it with this link:\n%s"

	deliveredTextFmt = "That's all of it: %d message(s)."

	partialDeliveryTextFmt = "Delivery interrupted after %d of %d message(s). Please try again."

	failureText = "Something went wrong. Please try again."

	emptyRecordHintText = "The record is empty, but the link above will still work."
)
