package convert

// MemContent holds a converted image in memory. It is the Content
// implementation used by the CLI and by callers without a framework wrapper.
type MemContent struct {
	name string
	data []byte
}

func (m *MemContent) Name() string  { return m.name }
func (m *MemContent) Size() int64   { return int64(len(m.data)) }
func (m *MemContent) Bytes() []byte { return m.data }

// MemFactory builds MemContent values.
func MemFactory(name string, data []byte) (Content, error) {
	return &MemContent{name: name, data: data}, nil
}
