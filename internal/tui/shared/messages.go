package shared

// BridgeClosedMsg is delivered once the runner has closed its event bridge.
type BridgeClosedMsg struct{}

// OutputLineMsg carries one line of step output.
type OutputLineMsg struct {
	Level string
	Text  string
}
