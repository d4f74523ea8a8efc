package transform

import (
	"testing"

	"lumen/internal/entity"
	"lumen/internal/project"
)

// appendMarker returns a pass that appends a fresh statement node so the
// application order is visible in the output.
func appendMarker(t *testing.T, pos int) Transformation {
	t.Helper()
	return func(ctx *Context, stmts []entity.NodeID) []entity.NodeID {
		id := ctx.Nodes.New(entity.KindExprStatement, pos, pos+1)
		return append(stmts, id)
	}
}

func newContext() *Context {
	return &Context{Nodes: entity.NewNodes(16)}
}

func TestChainAppliesLeftToRight(t *testing.T) {
	ctx := newContext()
	input := []entity.NodeID{ctx.Nodes.New(entity.KindVarStatement, 0, 5)}

	a := appendMarker(t, 100)
	b := appendMarker(t, 200)
	c := appendMarker(t, 300)

	got := Chain(a, b, c)(ctx, input)
	if len(got) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(got))
	}
	wantPos := []int{0, 100, 200, 300}
	for i, id := range got {
		if p := ctx.Nodes.Get(id).Pos; p != wantPos[i] {
			t.Errorf("statement %d has pos %d, want %d", i, p, wantPos[i])
		}
	}
}

func TestChainEqualsNestedApplication(t *testing.T) {
	a := appendMarker(t, 1)
	b := appendMarker(t, 2)
	c := appendMarker(t, 3)

	ctxChained := newContext()
	ctxNested := newContext()
	input := []entity.NodeID{}

	chained := Chain(a, b, c)(ctxChained, input)
	nested := c(ctxNested, b(ctxNested, a(ctxNested, input)))

	if len(chained) != len(nested) {
		t.Fatalf("chain len %d != nested len %d", len(chained), len(nested))
	}
	for i := range chained {
		pc := ctxChained.Nodes.Get(chained[i]).Pos
		pn := ctxNested.Nodes.Get(nested[i]).Pos
		if pc != pn {
			t.Errorf("statement %d: chained pos %d, nested pos %d", i, pc, pn)
		}
	}
}

func TestEmptyChainIsIdentity(t *testing.T) {
	ctx := newContext()
	input := []entity.NodeID{ctx.Nodes.New(entity.KindBlock, 0, 1)}

	got := Chain()(ctx, input)
	if &got[0] != &input[0] {
		t.Fatal("empty chain must return the same slice, not a copy")
	}

	// all-nil slots degrade to identity too
	got = Chain(nil, nil)(ctx, input)
	if &got[0] != &input[0] {
		t.Fatal("all-nil chain must return the same slice")
	}
}

func TestChainSkipsAbsentPasses(t *testing.T) {
	ctx := newContext()
	got := Chain(nil, appendMarker(t, 7), nil)(ctx, nil)
	if len(got) != 1 || ctx.Nodes.Get(got[0]).Pos != 7 {
		t.Fatalf("absent slots must be skipped, got %v", got)
	}
}

func TestForTargetSelectsTrailingSubset(t *testing.T) {
	latest := appendMarker(t, 1)
	modern := appendMarker(t, 2)
	legacy := appendMarker(t, 3)

	tests := []struct {
		target     project.Target
		wantPasses int
	}{
		{project.TargetV3, 3},
		{project.TargetV5, 3},
		{project.TargetV6, 2},
		{project.TargetV7, 2},
	}
	for _, tt := range tests {
		passes := ForTarget(tt.target, latest, modern, legacy)
		if len(passes) != tt.wantPasses {
			t.Errorf("ForTarget(%v) returned %d passes, want %d", tt.target, len(passes), tt.wantPasses)
		}
	}
}

func TestPipelineForOldTargetRunsLegacyLast(t *testing.T) {
	ctx := newContext()
	got := Pipeline(project.TargetV3, appendMarker(t, 1), appendMarker(t, 2), appendMarker(t, 3))(ctx, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 appended statements, got %d", len(got))
	}
	if ctx.Nodes.Get(got[2]).Pos != 3 {
		t.Error("legacy pass must run last")
	}

	ctx = newContext()
	got = Pipeline(project.TargetV7, appendMarker(t, 1), appendMarker(t, 2), appendMarker(t, 3))(ctx, nil)
	if len(got) != 2 {
		t.Fatalf("modern target must skip the legacy pass, got %d statements", len(got))
	}
}
