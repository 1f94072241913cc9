package scene

// MaxKeys bounds the key codes an InputSet can track. GLFW key codes fit.
const MaxKeys = 512

// InputSet records which keys are currently held. Out-of-range codes
// (including GLFW's unknown key, -1) are ignored.
type InputSet struct {
	held [MaxKeys]bool
}

func (s *InputSet) Press(key int) {
	if key >= 0 && key < MaxKeys {
		s.held[key] = true
	}
}

func (s *InputSet) Release(key int) {
	if key >= 0 && key < MaxKeys {
		s.held[key] = false
	}
}

func (s *InputSet) Held(key int) bool {
	return key >= 0 && key < MaxKeys && s.held[key]
}

// Any reports whether at least one of keys is held.
func (s *InputSet) Any(keys ...int) bool {
	for _, k := range keys {
		if s.Held(k) {
			return true
		}
	}
	return false
}
