package domain

// Params is an ordered string to string mapping. Iteration follows first
// insertion order so that anything rendered from it is deterministic. The
// zero value is ready to use.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams builds Params from alternating key/value pairs. A trailing key
// without a value is ignored.
func NewParams(kv ...string) Params {
	var p Params
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}

	return p
}

// Set stores value under key. Overwriting an existing key keeps its original
// position.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.values[key]

	return v, ok
}

// Len returns the number of keys.
func (p Params) Len() int { return len(p.keys) }

// Keys returns a copy of the keys in insertion order.
func (p Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Each calls fn for every pair in insertion order.
func (p Params) Each(fn func(key, value string)) {
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}
