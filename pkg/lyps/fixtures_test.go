package lyps

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// fixture pairs a short Lyps program with a name; the snapshot stores its
// printed result the first run and compares against it on every later run,
// the way the teacher's fixture suite snapshots DWScript program output.
var fixtures = []struct {
	name   string
	source string
}{
	{"factorial", "(block (defun! fact (n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 6))"},
	{"rational-sum", "(+ 1/3 1/6 1/2)"},
	{"list-reverse", "(reverse (list 1 2 3 4 5))"},
	{"map-roundtrip", `(block (def! m (map (a 1) (b 2))) (mapGet m (quote b)))`},
	{"quasiquote-splice", "(block (def! xs (list 2 3)) `(1 ,@xs 4))"},
	{"cond-fallthrough", "(cond ((= 1 2) (quote no)) ((= 1 1) (quote yes)) (ELSE (quote never)))"},
}

func TestFixtureSnapshots(t *testing.T) {
	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			it := NewInterpreter(nil, nil)
			result, err := it.Eval(fx.source)
			if err != nil {
				t.Fatalf("eval %s: %v", fx.name, err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", fx.name), result)
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
