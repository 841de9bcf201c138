package dif

// KeyValue is a single property entry of a Dictionary.
type KeyValue struct {
	Key   string
	Value string
}

// Dictionary is the ordered string-keyed property mapping attached to
// entities, triggers and path followers. Key order is preserved because
// the downstream builder serializes properties in insertion order.
type Dictionary struct {
	pairs []KeyValue
}

// NewDictionary returns a Dictionary pre-populated with the given pairs.
func NewDictionary(pairs ...KeyValue) Dictionary {
	d := Dictionary{}
	for _, kv := range pairs {
		d.Set(kv.Key, kv.Value)
	}
	return d
}

// Set inserts key with the given value, replacing the value in place if
// the key is already present.
func (d *Dictionary) Set(key, value string) {
	for i := range d.pairs {
		if d.pairs[i].Key == key {
			d.pairs[i].Value = value
			return
		}
	}

	d.pairs = append(d.pairs, KeyValue{Key: key, Value: value})
}

// Get returns the value stored under key.
func (d Dictionary) Get(key string) (string, bool) {
	for _, kv := range d.pairs {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return "", false
}

// GetDefault returns the value stored under key, or def if absent.
func (d Dictionary) GetDefault(key, def string) string {
	if v, ok := d.Get(key); ok {
		return v
	}

	return def
}

// Len returns the number of entries.
func (d Dictionary) Len() int {
	return len(d.pairs)
}

// Pairs returns the entries in insertion order.
func (d Dictionary) Pairs() []KeyValue {
	return d.pairs
}

// Clone returns an independent copy of the dictionary.
func (d Dictionary) Clone() Dictionary {
	pairs := make([]KeyValue, len(d.pairs))
	copy(pairs, d.pairs)

	return Dictionary{pairs: pairs}
}
