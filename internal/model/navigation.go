package model

// View identifies a client screen.
type View string

const (
	ViewLogin     View = "login"
	ViewSignup    View = "signup"
	ViewDashboard View = "dashboard"
	ViewMerge     View = "merge"
	ViewSplit     View = "split"
	ViewCompress  View = "compress"
	ViewConvert   View = "convert"
	ViewOCR       View = "ocr"
)

// Navigator moves the client to another view.
type Navigator interface {
	Navigate(view View)
}
