package suite

import "time"

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Strict      bool   `yaml:"strict"`
	Cases       []Case `yaml:"cases"`
}

// Case is one expression with either the expected postfix or the expected
// failure reason.
type Case struct {
	ID         string `yaml:"id" json:"id"`
	Expression string `yaml:"expression" json:"expression"`
	Postfix    string `yaml:"postfix,omitempty" json:"postfix,omitempty"`
	Error      string `yaml:"error,omitempty" json:"error,omitempty"`
}

func (c Case) ExpectsError() bool {
	return c.Error != ""
}

type Result struct {
	Case    Case          `json:"case"`
	Got     string        `json:"got,omitempty"`
	Reason  string        `json:"reason,omitempty"`
	Passed  bool          `json:"passed"`
	Latency time.Duration `json:"latency"`
}

type Report struct {
	Suite   string       `json:"suite"`
	Results []Result     `json:"results"`
	Latency LatencyStats `json:"latency"`
}

func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

func (r Report) Passed() bool {
	return len(r.Failed()) == 0
}
