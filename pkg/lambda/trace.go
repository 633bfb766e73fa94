package lambda

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleBeta
	RuleExpand
)

func (k RuleKind) String() string {
	switch k {
	case RuleBeta:
		return "beta"
	case RuleExpand:
		return "expand"
	default:
		return "unknown"
	}
}

// TraceEvent records one contraction. Name is the bound parameter for a
// beta step and the definition name for an expansion.
type TraceEvent struct {
	Step uint64
	Rule RuleKind
	Name string
}

// EnableTrace starts recording the first capacity contractions of every
// subsequent Normalize call.
func (r *Reducer) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	r.traceBuf = make([]TraceEvent, capacity)
	r.traceIdx = 0
	r.traceOn = true
}

func (r *Reducer) DisableTrace() {
	r.traceOn = false
}

func (r *Reducer) TraceSnapshot() []TraceEvent {
	if !r.traceOn {
		return nil
	}
	count := r.traceIdx
	if count > uint64(len(r.traceBuf)) {
		count = uint64(len(r.traceBuf))
	}
	res := make([]TraceEvent, count)
	copy(res, r.traceBuf[:count])
	return res
}

func (r *Reducer) recordTrace(rule RuleKind, name string) {
	if !r.traceOn || len(r.traceBuf) == 0 {
		return
	}
	idx := r.traceIdx
	r.traceIdx++
	if idx >= uint64(len(r.traceBuf)) {
		return
	}
	r.traceBuf[idx] = TraceEvent{
		Step: idx,
		Rule: rule,
		Name: name,
	}
}

func (r *Reducer) resetTrace() {
	r.traceIdx = 0
}
