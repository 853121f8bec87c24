package emojify

type EmojifyRequest struct {
	ObjectName string `query:"objectName" validate:"omitempty,max=1024"`
}

type EmojifyResponse struct {
	ObjectPath   string `json:"objectPath"`
	EmojifiedURL string `json:"emojifiedUrl"`
	StatusCode   int    `json:"statusCode"`
}

type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}
