package fixedgl

// Error is a latched pipeline error, modelled on the GL error flag.
type Error uint8

const (
	NoError Error = iota
	InvalidEnum
	InvalidValue
	InvalidOperation
	StackOverflow
	StackUnderflow
)

func (e Error) Error() string {
	switch e {
	case NoError:
		return "fixedgl: no error"
	case InvalidEnum:
		return "fixedgl: invalid enum"
	case InvalidValue:
		return "fixedgl: invalid value"
	case InvalidOperation:
		return "fixedgl: invalid operation"
	case StackOverflow:
		return "fixedgl: stack overflow"
	case StackUnderflow:
		return "fixedgl: stack underflow"
	}
	return "fixedgl: unknown error"
}

// Err returns the first error recorded since the previous call and clears it.
func (c *Context) Err() Error {
	e := c.err
	c.err = NoError
	return e
}

func (c *Context) setErr(e Error) {
	if c.err == NoError {
		c.err = e
	}
}
