package entity

// EmojifyResult is the success side of the emojify envelope. Failures are
// carried as *response.Error values, so a caller never sees both populated.
type EmojifyResult struct {
	ObjectPath   string `json:"object_path"`
	EmojifiedURL string `json:"emojified_url"`
}
