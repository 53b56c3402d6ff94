package application

import "github.com/bnema/shopassist/internal/domain"

type LoginResult struct {
	Session domain.Session
	Offline bool
}

type FailedTransfer struct {
	Item domain.LineItem
	Err  error
}

// TransferReport lists which source lines reached the target cart.
type TransferReport struct {
	SourceCartID string
	TargetCartID string
	Transferred  []domain.LineItem
	Failed       []FailedTransfer
}

func (r TransferReport) Complete() bool {
	return len(r.Failed) == 0
}

type LoginOutcome struct {
	LoginResult
	CartID   string
	Transfer *TransferReport
	// CartErr is set when sign-in succeeded but cart setup did not.
	CartErr error
}

type KeywordResult struct {
	Keyword string
	Result  domain.SearchResult
	Err     error
}

type Answer struct {
	Message  string
	Keywords []string
	Results  []KeywordResult
}

func (a Answer) ProductCount() int {
	total := 0
	for _, r := range a.Results {
		total += len(r.Result.Products)
	}
	return total
}
