package calc

// Vars holds variable values. The zero value is an empty set of variables.
// Vars is not safe for concurrent use.
type Vars struct {
	names map[string]float64
}

// NewVars creates an empty set of variables.
func NewVars() *Vars {
	return &Vars{names: make(map[string]float64)}
}

// Set sets the value of a variable, creating it if needed.
func (v *Vars) Set(name string, value float64) {
	if v.names == nil {
		v.names = make(map[string]float64)
	}
	v.names[name] = value
}

// Get returns the value of a variable, or 0 if it is not defined. Get does
// not define the variable.
func (v *Vars) Get(name string) float64 {
	return v.names[name]
}

// Has returns whether a variable is defined.
func (v *Vars) Has(name string) bool {
	_, ok := v.names[name]
	return ok
}

// Clear removes all variables.
func (v *Vars) Clear() {
	for k := range v.names {
		delete(v.names, k)
	}
}

// Len returns the number of defined variables.
func (v *Vars) Len() int {
	return len(v.names)
}

// All returns a copy of all variables and their values.
func (v *Vars) All() map[string]float64 {
	m := make(map[string]float64, len(v.names))
	for k, x := range v.names {
		m[k] = x
	}
	return m
}

// ValidName returns whether s can name a variable: an ASCII letter followed
// by any number of ASCII letters and digits.
func ValidName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
