package lint

// Category groups issues by the checker that produced them.
type Category string

const (
	CategoryOrder      Category = "order"
	CategoryRouter     Category = "router"
	CategoryMiddleware Category = "middleware"
	CategoryConfig     Category = "config"
)

// Issue is a single lint finding. Fix is empty when there is no suggestion.
type Issue struct {
	Category Category
	Message  string
	Fix      string
}

// ServiceResult holds the findings for one service directory.
type ServiceResult struct {
	Name       string
	Path       string
	Order      []Issue
	Router     []Issue
	Middleware []Issue
	Config     []Issue
}

// HasErrors reports whether any checker found something.
func (r ServiceResult) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount is the total number of issues across all categories.
func (r ServiceResult) ErrorCount() int {
	return len(r.Order) + len(r.Router) + len(r.Middleware) + len(r.Config)
}

// Messages returns the message of every issue, in order.
func Messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}

func issuesFrom(cat Category, messages []string) []Issue {
	if len(messages) == 0 {
		return nil
	}
	out := make([]Issue, len(messages))
	for i, m := range messages {
		out[i] = Issue{Category: cat, Message: m}
	}
	return out
}
