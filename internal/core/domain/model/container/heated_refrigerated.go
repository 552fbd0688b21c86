package container

// HeatedRefrigerated is a Refrigerated container that can also heat its
// cargo. It differs only in its policy, which puts a lower bound of
// MinHeatedCelsius in front of the refrigerated upper bound.
type HeatedRefrigerated struct {
	*Refrigerated
}

func newHeatedRefrigerated() *HeatedRefrigerated {
	return &HeatedRefrigerated{
		Refrigerated: newRefrigerated(KindHeatedRefrigerated, HeatedRefrigeratedPolicy()),
	}
}

// Validate fails for heated containers that did not come from a Factory.
func (h *HeatedRefrigerated) Validate() error {
	if h == nil {
		return ErrContainerIsNotConstructed
	}
	return h.Refrigerated.Validate()
}
