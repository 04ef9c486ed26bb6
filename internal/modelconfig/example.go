package modelconfig

// Example returns a starter configuration covering every family, a group,
// both element types and all three shapes.
func Example() *Document {
	dim := func(n int) *int { return &n }
	rate := 0.0025
	return &Document{
		Name:     "my_new_model",
		Builder:  "a newly-generated model",
		BaseRate: &rate,
		Inports: []ChannelDoc{
			{Name: "scalar_in"},
			{Name: "vectors.vector1d_in", DimX: dim(8)},
			{Name: "vectors.vector2d_in", DimX: dim(2), DimY: dim(12)},
		},
		Outports: []ChannelDoc{
			{Name: "scalar_out"},
			{Name: "vectors.vector1d_out", DimX: dim(6)},
			{Name: "vectors.vector2d_out", DimX: dim(3), DimY: dim(5)},
		},
		Parameters: []ChannelDoc{
			{Name: "i32_param", Type: "i32"},
			{Name: "double_vec_param", Type: "double", DimX: dim(4), DimY: dim(4)},
		},
		Signals: []ChannelDoc{
			{Name: "i32_vec_sig", Type: "i32", DimX: dim(24), Description: "an array of integers"},
			{Name: "double_sig", Type: "double", Description: "a double value"},
		},
	}
}
