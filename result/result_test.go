package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/cowtree/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7)
	y := Err[int](errors.New("not ok"))

	var v int
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Error("expected Ok(7) to match Ok, matched Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}
	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Error("expected Err to match Err, matched Ok")
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultAccessors(t *testing.T) {
	x := Ok(true)
	if !x.IsOk() || x.Error() != nil || !x.WithDefault(false) {
		t.Errorf("expected Ok(true) to be ok with value true, is %#v", x)
	}
	sentinel := errors.New("broken")
	y := Err[bool](sentinel)
	if y.IsOk() || !errors.Is(y.Error(), sentinel) || y.WithDefault(true) != true {
		t.Errorf("expected Err(broken) to carry its error, is %#v", y)
	}
}

func TestResultAndThen(t *testing.T) {
	atoi := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int](err)
		}
		return Ok(n)
	}
	if n := AndThen(atoi, Ok("42")).WithDefault(-1); n != 42 {
		t.Errorf("expected Ok(\"42\") |> andThen(atoi) to be 42, is %d", n)
	}
	if r := AndThen(atoi, Ok("x")); r.IsOk() {
		t.Error("expected Ok(\"x\") |> andThen(atoi) to fail, didn't")
	}
	if r := AndThen(atoi, Err[string](errors.New("early"))); r.Error().Error() != "early" {
		t.Errorf("expected early error to be passed through, is %v", r.Error())
	}
}
