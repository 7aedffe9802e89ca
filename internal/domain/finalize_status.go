package domain

type FinalizeStatus string

const (
	FinalizeStatusRejected        FinalizeStatus = "REJECTED"
	FinalizeStatusIgnored         FinalizeStatus = "IGNORED"
	FinalizeStatusRecorded        FinalizeStatus = "RECORDED"
	FinalizeStatusAlreadyRecorded FinalizeStatus = "ALREADY_RECORDED"
	FinalizeStatusRecordFailed    FinalizeStatus = "RECORD_FAILED"
	FinalizeStatusNotifyFailed    FinalizeStatus = "NOTIFY_FAILED"
	FinalizeStatusUnattributed    FinalizeStatus = "UNATTRIBUTED"
)

// IsTerminal reports whether the delivery reached a state where the gateway
// must not redeliver. RECORD_FAILED is the one state that wants a redelivery.
func (s FinalizeStatus) IsTerminal() bool {
	return s != FinalizeStatusRecordFailed
}

// String representation (for logging)
func (s FinalizeStatus) String() string {
	return string(s)
}
