package domain

// SpecItem is one discovered spec file together with the weight used for
// load balancing. Weight is either a measured duration in seconds or a
// static estimate derived from the file's content.
type SpecItem struct {
	Path   string
	Weight float64
	Static bool
}

// Chunk is one parallel execution partition: the spec files assigned to it
// and their accumulated weight.
type Chunk struct {
	Items  []SpecItem
	Weight float64
}

// Paths returns the member file paths in assignment order.
func (c Chunk) Paths() []string {
	paths := make([]string, len(c.Items))
	for i, item := range c.Items {
		paths[i] = item.Path
	}
	return paths
}
