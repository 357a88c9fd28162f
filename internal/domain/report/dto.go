package report

// WaterfallStep is one bar of the monthly income statement: a labeled delta
// plus the running subtotal after applying it.
type WaterfallStep struct {
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Subtotal int64  `json:"subtotal"`
}

type WaterfallResponse struct {
	Month string          `json:"month"`
	Steps []WaterfallStep `json:"steps"`
	Net   int64           `json:"net"`
}
