package owserr

// Option is an Error option function
type Option func(*Error)

// WithText appends an ExceptionText message
func WithText(msg string) Option        { return func(e *Error) { e.Text = append(e.Text, msg) } }
func WithLocator(locator string) Option { return func(e *Error) { e.Locator = locator } }
