package executor

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/solana-dex-cpi/cpi"
)

// Submission is one captured invocation: the target program, the resolved
// account-metadata list, the full instruction data, and the attestation set.
type Submission struct {
	ProgramID solana.PublicKey
	Accounts  []*solana.AccountMeta
	Data      []byte
	Signers   []cpi.Seeds
}

// Recorder is an Executor that captures submissions instead of executing
// them. It backs dry runs and tests; a nil Err means every Submit succeeds.
type Recorder struct {
	mu          sync.Mutex
	submissions []Submission

	// Err, when set, is returned from every Submit after recording.
	Err error
}

// Submit records the invocation.
func (r *Recorder) Submit(_ context.Context, ix solana.Instruction, signers []cpi.Seeds) error {
	data, err := ix.Data()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, Submission{
		ProgramID: ix.ProgramID(),
		Accounts:  ix.Accounts(),
		Data:      data,
		Signers:   signers,
	})
	return r.Err
}

// Submissions returns a copy of everything captured so far.
func (r *Recorder) Submissions() []Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Submission, len(r.submissions))
	copy(out, r.submissions)
	return out
}

// Last returns the most recent submission, if any.
func (r *Recorder) Last() (Submission, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.submissions) == 0 {
		return Submission{}, false
	}
	return r.submissions[len(r.submissions)-1], true
}

// Reset drops all captured submissions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = nil
}
