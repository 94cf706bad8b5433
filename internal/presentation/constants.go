package presentation

const (
	SessionIDParam = "id"
	Sha256Param    = "sha256"
	ConfirmQuery   = "confirm"
	ReasonTag      = "X-Reason"
)
