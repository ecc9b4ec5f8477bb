package observe

// OpMeta describes an encode call site for telemetry purposes.
type OpMeta struct {
	Scope string // Caller-defined owner, e.g. "router" (optional)
	Name  string // Operation name, e.g. "encode" (required)
}

// SpanName returns the deterministic span name for this operation.
// Format: urlsafe.<scope>.<name> or urlsafe.<name>
func (m OpMeta) SpanName() string {
	return "urlsafe." + m.ID()
}

// ID returns the scope-qualified operation name.
func (m OpMeta) ID() string {
	if m.Scope != "" {
		return m.Scope + "." + m.Name
	}
	return m.Name
}

// Validate checks that the operation has a name.
func (m OpMeta) Validate() error {
	if m.Name == "" {
		return ErrMissingOpName
	}
	return nil
}

// Outcome is what an instrumented encode call reports.
type Outcome struct {
	Output   string
	Path     string // cached, verbatim or full
	InputLen int    // bytes
	Escaped  int    // bytes written as %XX
}
