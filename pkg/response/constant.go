package response

const (
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned for unexpected server errors.
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
