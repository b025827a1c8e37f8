package codable

// newTransient returns the record an on-demand object is bridged through for
// the length of one encode or decode call. Its registries are copies of the
// enclosing ones, so later registrations on either side do not leak across.
func newTransient(transformers *Transformers, creators *Creators) *Record {
	return &Record{
		transformers: *transformers.Extend(nil),
		creators:     *creators.Extend(nil),
	}
}
