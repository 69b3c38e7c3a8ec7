package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarbleSodas/godoty-docs/internal/indexer"
	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

func newTestResolver(t *testing.T, classes []types.ClassDoc) *Resolver {
	t.Helper()
	return New(indexer.Build(classes))
}

func uiClasses() []types.ClassDoc {
	return []types.ClassDoc{
		{
			Name:  "Object",
			Brief: "Base class for all other classes.",
			Methods: []types.Method{
				{Name: "free", Description: "Deletes the object."},
			},
		},
		{
			Name:     "Node",
			Inherits: "Object",
			Brief:    "Base class for all scene objects.",
			Methods: []types.Method{
				{Name: "add_child", Description: "Adds a child node."},
			},
			Signals: []types.Signal{
				{Name: "renamed", Description: "Emitted when the node name changes."},
			},
		},
		{
			Name:     "Control",
			Inherits: "Node",
			Brief:    "Base class for all UI nodes.",
			Properties: []types.Property{
				{Name: "custom_minimum_size", Type: "Vector2"},
			},
		},
		{
			Name:     "BaseButton",
			Inherits: "Control",
			Brief:    "Abstract base class for GUI buttons.",
			Properties: []types.Property{
				{Name: "disabled", Type: "bool"},
			},
			Signals: []types.Signal{
				{Name: "pressed", Description: "Emitted when the button is pressed down."},
			},
		},
		{
			Name:     "Button",
			Inherits: "BaseButton",
			Brief:    "A themed button that can contain text.",
			Properties: []types.Property{
				{Name: "text", Type: "String"},
			},
		},
	}
}

func TestClass(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	doc, err := r.Class("Button")
	require.NoError(t, err)
	assert.Equal(t, "Button", doc.Name)
	assert.Equal(t, "BaseButton", doc.Inherits)
}

func TestClass_NotFoundWithSuggestions(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	_, err := r.Class("Nod")
	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrNotFound, derr.Kind)
	require.NotEmpty(t, derr.Suggestions)
	assert.LessOrEqual(t, len(derr.Suggestions), 5)
	assert.Equal(t, "Node", derr.Suggestions[0])
}

func TestClassChain_FullChain(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	resp, err := r.ClassChain("Button", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Button", "BaseButton", "Control", "Node", "Object"}, resp.InheritanceChain)
	require.Len(t, resp.Classes, 5)
	assert.Equal(t, "Button", resp.Classes[0].Name)
	assert.Equal(t, "Object", resp.Classes[4].Name)
	assert.Empty(t, resp.Warnings)
}

func TestClassChain_MaxDepth(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	resp, err := r.ClassChain("Node", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Node", "Object"}, resp.InheritanceChain)

	resp, err = r.ClassChain("Button", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Button"}, resp.InheritanceChain)

	resp, err = r.ClassChain("Button", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Button", "BaseButton", "Control"}, resp.InheritanceChain)
}

func TestClassChain_RootClass(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	resp, err := r.ClassChain("Object", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Object"}, resp.InheritanceChain)
	assert.Empty(t, resp.Warnings)
}

func TestClassChain_MissingParent(t *testing.T) {
	classes := []types.ClassDoc{
		{Name: "Orphan", Inherits: "Phantom", Brief: "Parent never shipped."},
	}
	r := newTestResolver(t, classes)

	resp, err := r.ClassChain("Orphan", -1)
	require.NoError(t, err)

	// The unresolvable parent still shows up in the chain for visibility.
	assert.Equal(t, []string{"Orphan", "Phantom"}, resp.InheritanceChain)
	require.Len(t, resp.Classes, 1)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Phantom")
}

func TestClassChain_CycleStops(t *testing.T) {
	classes := []types.ClassDoc{
		{Name: "Alpha", Inherits: "Beta"},
		{Name: "Beta", Inherits: "Alpha"},
	}
	r := newTestResolver(t, classes)

	resp, err := r.ClassChain("Alpha", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, resp.InheritanceChain)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "cycle")
}

func TestClassChain_UnknownClass(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	_, err := r.ClassChain("Phantom", -1)
	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrNotFound, derr.Kind)
}

func TestSymbol_DirectMember(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	sym, err := r.Symbol("BaseButton.pressed")
	require.NoError(t, err)
	assert.Equal(t, "BaseButton", sym.ClassName)
	assert.Equal(t, types.KindSignal, sym.Kind)
	assert.Equal(t, "pressed", sym.Name)
	require.NotNil(t, sym.Signal)
	assert.Nil(t, sym.Method)
}

func TestSymbol_InheritedMember(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	// pressed is declared on BaseButton; querying through Button resolves it
	// and reports the declaring class.
	sym, err := r.Symbol("Button.pressed")
	require.NoError(t, err)
	assert.Equal(t, "BaseButton", sym.ClassName)
	assert.Equal(t, types.KindSignal, sym.Kind)

	// A member from the far end of the chain resolves too.
	sym, err = r.Symbol("Button.free")
	require.NoError(t, err)
	assert.Equal(t, "Object", sym.ClassName)
	assert.Equal(t, types.KindMethod, sym.Kind)
}

func TestSymbol_KindPrecedence(t *testing.T) {
	classes := []types.ClassDoc{{
		Name:       "Timer",
		Methods:    []types.Method{{Name: "start"}},
		Properties: []types.Property{{Name: "start"}},
	}}
	r := newTestResolver(t, classes)

	sym, err := r.Symbol("Timer.start")
	require.NoError(t, err)
	assert.Equal(t, types.KindMethod, sym.Kind)
}

func TestSymbol_BadShape(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	for _, q := range []string{"Button", "Button.", ".pressed", "Button.pressed.extra", "Button pressed", ""} {
		t.Run(q, func(t *testing.T) {
			_, err := r.Symbol(q)
			var derr *types.DocError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, types.ErrInvalidArgument, derr.Kind)
		})
	}
}

func TestSymbol_UnknownClass(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	_, err := r.Symbol("Buttom.pressed")
	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrNotFound, derr.Kind)
	require.NotEmpty(t, derr.Suggestions)
	assert.Equal(t, "Button", derr.Suggestions[0])
}

func TestSymbol_UnknownMemberSuggestions(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	_, err := r.Symbol("Button.presed")
	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrNotFound, derr.Kind)
	require.NotEmpty(t, derr.Suggestions)

	// Suggestions come from the queried class and its ancestors, qualified
	// against the queried class. pressed lives on BaseButton but is
	// suggested as Button.pressed.
	assert.Equal(t, "Button.pressed", derr.Suggestions[0])
	for _, s := range derr.Suggestions {
		assert.Contains(t, s, "Button.")
	}
}

func TestListClasses(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	all := r.ListClasses("", 0)
	assert.Equal(t, []string{"BaseButton", "Button", "Control", "Node", "Object"}, all)
}

func TestListClasses_Prefix(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	assert.Equal(t, []string{"BaseButton", "Button"}, r.ListClasses("b", 0))
	assert.Equal(t, []string{"Node"}, r.ListClasses("NO", 0))
	assert.Empty(t, r.ListClasses("zzz", 0))
}

func TestListClasses_Limit(t *testing.T) {
	r := newTestResolver(t, uiClasses())

	limited := r.ListClasses("", 2)
	assert.Equal(t, []string{"BaseButton", "Button"}, limited)
}
