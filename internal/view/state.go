package view

// State is one of Idle, Loading, Ready, Failed or NotFound.
type State interface {
	Phase() Phase
	isState()
}

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseFailed   Phase = "failed"
	PhaseNotFound Phase = "not_found"
)

// Idle is the state before the first fetch cycle.
type Idle struct{}

// Loading is a fetch cycle in flight for Membership.
type Loading struct {
	Membership string
}

// Ready carries the complete result of one fetch cycle.
type Ready struct {
	Data *PageData
}

// Failed means a read of the cycle failed; Err is a *FetchError.
type Failed struct {
	Membership string
	Err        error
}

// NotFound means no user has the membership identifier.
type NotFound struct {
	Membership string
}

func (Idle) Phase() Phase     { return PhaseIdle }
func (Loading) Phase() Phase  { return PhaseLoading }
func (Ready) Phase() Phase    { return PhaseReady }
func (Failed) Phase() Phase   { return PhaseFailed }
func (NotFound) Phase() Phase { return PhaseNotFound }

func (Idle) isState()     {}
func (Loading) isState()  {}
func (Ready) isState()    {}
func (Failed) isState()   {}
func (NotFound) isState() {}
