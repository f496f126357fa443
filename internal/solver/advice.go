package solver

// Advice is the headline recommendation for the current reset
type Advice struct {
	ShouldDonate     bool `json:"shouldDonate"`
	ResetsRemaining  int  `json:"resetsRemaining"`
	InvestResetsLeft int  `json:"investResetsLeft"`
}

// Advise summarises the remaining resets against the donation window
func Advise(resetsRemaining, window int) Advice {
	a := Advice{
		ShouldDonate:    resetsRemaining <= window,
		ResetsRemaining: resetsRemaining,
	}
	if !a.ShouldDonate {
		a.InvestResetsLeft = resetsRemaining - window + 1
	}
	return a
}
