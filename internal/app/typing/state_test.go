package typing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/typewriter/internal/domain/phrase"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "growing", ModeGrowing.String())
	assert.Equal(t, "shrinking", ModeShrinking.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestAdvance_HiGoScenario(t *testing.T) {
	phrases := phrase.MustNew("Hi", "Go")
	d := DefaultDelays()

	steps := []struct {
		text  string
		state State
		delay time.Duration
	}{
		{text: "H", state: State{PhraseIndex: 0, CharCount: 1, Mode: ModeGrowing}, delay: d.Grow},
		{text: "Hi", state: State{PhraseIndex: 0, CharCount: 2, Mode: ModeShrinking}, delay: d.PauseFull},
		{text: "H", state: State{PhraseIndex: 0, CharCount: 1, Mode: ModeShrinking}, delay: d.Shrink},
		{text: "", state: State{PhraseIndex: 1, CharCount: 0, Mode: ModeGrowing}, delay: d.PauseEmpty},
		{text: "G", state: State{PhraseIndex: 1, CharCount: 1, Mode: ModeGrowing}, delay: d.Grow},
		{text: "Go", state: State{PhraseIndex: 1, CharCount: 2, Mode: ModeShrinking}, delay: d.PauseFull},
	}

	s := State{}
	for i, want := range steps {
		f := Advance(s, phrases, d)
		assert.Equal(t, want.text, f.Text, "step %d text", i+1)
		assert.Equal(t, want.state, f.State, "step %d state", i+1)
		assert.Equal(t, want.delay, f.Delay, "step %d delay", i+1)
		s = f.State
	}
}

func TestAdvance_Invariants(t *testing.T) {
	phrases := phrase.MustNew("Web Developer", "UI/UX Designer", "Frontend Developer", "Creative Thinker")
	d := DefaultDelays()

	s := State{}
	for n := 0; n < 5*phrases.CycleSteps(); n++ {
		f := Advance(s, phrases, d)
		next := f.State

		require.GreaterOrEqual(t, next.CharCount, 0)
		require.LessOrEqual(t, next.CharCount, phrases.RuneLen(next.PhraseIndex))
		require.Equal(t, phrases.Prefix(s.PhraseIndex, next.CharCount), f.Text)

		switch s.Mode {
		case ModeGrowing:
			require.Equal(t, s.CharCount+1, next.CharCount)
			require.Equal(t, s.PhraseIndex, next.PhraseIndex)
			if next.CharCount == phrases.RuneLen(s.PhraseIndex) {
				require.Equal(t, ModeShrinking, next.Mode)
			} else {
				require.Equal(t, ModeGrowing, next.Mode)
			}
		case ModeShrinking:
			if s.CharCount == 1 {
				require.Equal(t, 0, next.CharCount)
				require.Equal(t, ModeGrowing, next.Mode)
				require.Equal(t, (s.PhraseIndex+1)%phrases.Len(), next.PhraseIndex)
			} else {
				require.Equal(t, s.CharCount-1, next.CharCount)
				require.Equal(t, ModeShrinking, next.Mode)
				require.Equal(t, s.PhraseIndex, next.PhraseIndex)
			}
		}
		s = next
	}
}

func TestAdvance_CycleClosure(t *testing.T) {
	tests := []struct {
		name    string
		phrases []string
	}{
		{name: "single phrase", phrases: []string{"X"}},
		{name: "two phrases", phrases: []string{"Hi", "Go"}},
		{name: "portfolio phrases", phrases: []string{"Web Developer", "UI/UX Designer", "Frontend Developer", "Creative Thinker"}},
		{name: "multibyte", phrases: []string{"こんにちは", "héllo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrases := phrase.MustNew(tt.phrases...)
			s := State{}
			for range phrases.CycleSteps() {
				s = Advance(s, phrases, DefaultDelays()).State
			}
			assert.Equal(t, State{}, s)
		})
	}
}

func TestAdvance_SinglePhraseStaysOnIndexZero(t *testing.T) {
	phrases := phrase.MustNew("X")
	s := State{}
	var texts []string
	for range 6 {
		f := Advance(s, phrases, DefaultDelays())
		assert.Equal(t, 0, f.State.PhraseIndex)
		texts = append(texts, f.Text)
		s = f.State
	}
	assert.Equal(t, []string{"X", "", "X", "", "X", ""}, texts)
}

func TestCycleDuration(t *testing.T) {
	phrases := phrase.MustNew("Hi", "Go")
	d := DefaultDelays()

	// per phrase: grow, pause-full, shrink, pause-empty
	expected := 2 * (d.Grow + d.PauseFull + d.Shrink + d.PauseEmpty)
	assert.Equal(t, expected, CycleDuration(phrases, d))
}
