package async

import (
	"testing"
)

func TestResultStates(t *testing.T) {
	tests := []struct {
		name        string
		result      Result[int]
		wantState   State
		wantValue   int
		wantOk      bool
		wantMessage string
	}{
		{
			name:      "idle result carries nothing",
			result:    Idle[int](),
			wantState: StateIdle,
		},
		{
			name:      "loading result carries nothing",
			result:    Loading[int](),
			wantState: StateLoading,
		},
		{
			name:      "success result carries the value",
			result:    Success(42),
			wantState: StateSuccess,
			wantValue: 42,
			wantOk:    true,
		},
		{
			name:        "error result carries the message",
			result:      Failure[int]("something broke"),
			wantState:   StateError,
			wantMessage: "something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.State(); got != tt.wantState {
				t.Errorf("State() = %v, want %v", got, tt.wantState)
			}

			value, ok := tt.result.Value()
			if ok != tt.wantOk {
				t.Errorf("Value() ok = %v, want %v", ok, tt.wantOk)
			}
			if value != tt.wantValue {
				t.Errorf("Value() = %v, want %v", value, tt.wantValue)
			}

			if got := tt.result.Message(); got != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateLoading, "loading"},
		{StateSuccess, "success"},
		{StateError, "error"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestMustValuePanicsOutsideSuccess(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustValue to panic on an idle result")
		}
	}()

	Idle[string]().MustValue()
}
