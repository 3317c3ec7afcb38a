package domain

// SignalKey identifies one monitored signal of a domain.
type SignalKey string

const (
	SignalWhoisUpdatedDate SignalKey = "whois_updated_date"
	SignalHTTPStatus       SignalKey = "http_status"
)

// Label is the human-readable name used in notification text.
func (k SignalKey) Label() string {
	switch k {
	case SignalWhoisUpdatedDate:
		return "Whois Updated Date"
	case SignalHTTPStatus:
		return "HTTP status"
	default:
		return string(k)
	}
}

// SignalState is the outcome of comparing one signal against its stored value.
type SignalState struct {
	Key      SignalKey
	Previous string
	Current  string

	Changed  bool
	FirstRun bool // no stored value existed before this check
}

// EvaluateSignal compares the current value of a signal against the stored
// one. A missing stored value initializes the signal: the current value
// doubles as the previous one and no change is reported.
//
// HTTP status values are normalized on both sides before comparison, so
// legacy stored values that still carry object addresses compare equal to
// their normalized form.
func EvaluateSignal(key SignalKey, previous string, hasPrevious bool, current string) SignalState {
	if key == SignalHTTPStatus {
		previous = NormalizeHTTPSignal(previous)
		current = NormalizeHTTPSignal(current)
	}

	if !hasPrevious {
		return SignalState{
			Key:      key,
			Previous: current,
			Current:  current,
			FirstRun: true,
		}
	}

	return SignalState{
		Key:      key,
		Previous: previous,
		Current:  current,
		Changed:  previous != current,
	}
}
