package qpack

// EncodeSafe converts any Encode failure into a nil result and a
// message string, for embedding hosts that prefer value-based error
// handling. It is a thin adapter over Encode.
func EncodeSafe(v interface{}, cfg *Config) ([]byte, string) {
	out, err := Encode(v, cfg)
	if err != nil {
		return nil, err.Error()
	}
	return out, ""
}

// DecodeSafe converts any Decode failure into a nil result and a
// message string. It is a thin adapter over Decode.
func DecodeSafe(buf []byte, cfg *Config) (interface{}, string) {
	v, err := Decode(buf, cfg)
	if err != nil {
		return nil, err.Error()
	}
	return v, ""
}

// MustEncode is Encode for callers that treat failure as a programming
// error. It panics instead of returning an error.
func MustEncode(v interface{}, cfg *Config) []byte {
	out, err := Encode(v, cfg)
	if err != nil {
		panic(err)
	}
	return out
}

// MustDecode is Decode for callers that treat failure as a programming
// error. It panics instead of returning an error.
func MustDecode(buf []byte, cfg *Config) interface{} {
	v, err := Decode(buf, cfg)
	if err != nil {
		panic(err)
	}
	return v
}
