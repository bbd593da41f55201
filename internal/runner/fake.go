package runner

import "context"

// FakeResult scripts one Run outcome for a Fake executor.
type FakeResult struct {
	Status int
	Err    error
	// Stdout is written to the spec's stdout writer when one is set.
	Stdout string
	Stderr string
}

// Fake records every Spec it is asked to run and replays scripted results.
// Tests substitute it for Direct/Scripted to assert on constructed argument
// vectors without spawning real processes.
type Fake struct {
	Calls   []Spec
	Results []FakeResult
}

func (f *Fake) Run(ctx context.Context, spec Spec) (int, error) {
	f.Calls = append(f.Calls, spec)
	if len(f.Results) == 0 {
		return 0, nil
	}
	res := f.Results[0]
	f.Results = f.Results[1:]
	if res.Stdout != "" && spec.Stdout != nil {
		_, _ = spec.Stdout.Write([]byte(res.Stdout))
	}
	if res.Stderr != "" && spec.Stderr != nil {
		_, _ = spec.Stderr.Write([]byte(res.Stderr))
	}
	return res.Status, res.Err
}
