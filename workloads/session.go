package workloads

// Session is the identity shared by up to sessionLength consecutive messages
type Session struct {
	// Index of the current message in the session, -1 before the first message
	Index          int
	RequestAddress string
	UserAgent      string
}

const sessionLength = 5

// AttackerAddresses are the known malicious sources.
// The first signatureAttackers of them always produce the same fake values.
var AttackerAddresses = []string{"123.123.123.123", "205.87.214.29", "192.168.83.193", "80.163.137.141"}

const signatureAttackers = 2

// Returns a session which will be refreshed on its first use
func NewSession() Session {
	return Session{Index: -1}
}

// Returns the index of the session address in AttackerAddresses, or -1
func (s Session) Attacker() int {
	return attackerIndex(s.RequestAddress)
}

// Reports whether the session address reseeds the fake values
func (s Session) IsSignatureAttacker() bool {
	attacker := s.Attacker()

	return attacker >= 0 && attacker < signatureAttackers
}

// Reports whether the next message starts a new session
func (s Session) expired() bool {
	return s.Index < 0 || s.Index+1 >= sessionLength
}

func attackerIndex(address string) int {
	for i, attacker := range AttackerAddresses {
		if attacker == address {
			return i
		}
	}

	return -1
}
