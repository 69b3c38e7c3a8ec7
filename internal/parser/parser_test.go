package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

const nodeXML = `<?xml version="1.0" encoding="UTF-8" ?>
<class name="Node" inherits="Object">
	<brief_description>
		Base class for all scene objects.
	</brief_description>
	<description>
		Nodes are the fundamental building blocks of a scene tree.
	</description>
	<methods>
		<method name="add_child">
			<return type="void" />
			<param name="node" type="Node" />
			<param name="force_readable_name" type="bool" default="false" />
			<description>
				Adds a child node.
			</description>
		</method>
		<method name="get_name" qualifiers="const">
			<return type="StringName" />
			<description>
				Returns the node name.
			</description>
		</method>
	</methods>
	<members>
		<member name="name" type="StringName">
			The name of the node.
		</member>
		<member name="process_priority" type="int" default="0">
			Execution order within the same engine callback.
		</member>
	</members>
	<signals>
		<signal name="renamed">
			<description>
				Emitted when the node name changes.
			</description>
		</signal>
		<signal name="child_entered_tree">
			<param name="node" type="Node" />
			<description>
				Emitted when a child enters the tree.
			</description>
		</signal>
	</signals>
	<constants>
		<constant name="NOTIFICATION_READY" value="13">
			Received when the node is ready.
		</constant>
	</constants>
</class>
`

func writeClassFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func minimalClass(name, inherits string) string {
	return `<?xml version="1.0" encoding="UTF-8" ?>
<class name="` + name + `" inherits="` + inherits + `">
	<brief_description>A ` + name + `.</brief_description>
	<description></description>
</class>
`
}

func TestParseFile(t *testing.T) {
	path := writeClassFile(t, t.TempDir(), "Node.xml", nodeXML)

	doc, err := New().ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Node", doc.Name)
	assert.Equal(t, "Object", doc.Inherits)
	assert.Equal(t, "Base class for all scene objects.", doc.Brief)
	assert.Equal(t, "Nodes are the fundamental building blocks of a scene tree.", doc.Description)

	require.Len(t, doc.Methods, 2)
	addChild := doc.Methods[0]
	assert.Equal(t, "add_child", addChild.Name)
	assert.Equal(t, "void", addChild.ReturnType)
	assert.Equal(t, "Adds a child node.", addChild.Description)
	require.Len(t, addChild.Args, 2)
	assert.Equal(t, types.Argument{Name: "node", Type: "Node"}, addChild.Args[0])
	assert.Equal(t, types.Argument{Name: "force_readable_name", Type: "bool", Default: "false"}, addChild.Args[1])
	assert.Empty(t, addChild.Qualifiers)

	getName := doc.Methods[1]
	assert.Equal(t, []string{"const"}, getName.Qualifiers)
	assert.Equal(t, "StringName", getName.ReturnType)

	require.Len(t, doc.Properties, 2)
	assert.Equal(t, "name", doc.Properties[0].Name)
	assert.Equal(t, "The name of the node.", doc.Properties[0].Description)
	assert.Equal(t, "0", doc.Properties[1].Default)

	require.Len(t, doc.Signals, 2)
	assert.Equal(t, "renamed", doc.Signals[0].Name)
	assert.Empty(t, doc.Signals[0].Args)
	require.Len(t, doc.Signals[1].Args, 1)
	assert.Equal(t, "node", doc.Signals[1].Args[0].Name)

	require.Len(t, doc.Constants, 1)
	assert.Equal(t, "NOTIFICATION_READY", doc.Constants[0].Name)
	assert.Equal(t, "13", doc.Constants[0].Value)
	assert.Equal(t, "Received when the node is ready.", doc.Constants[0].Description)
}

func TestParseFile_MalformedXML(t *testing.T) {
	path := writeClassFile(t, t.TempDir(), "Broken.xml", "<class name=\"Broken\">")

	_, err := New().ParseFile(path)
	require.Error(t, err)

	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrParse, derr.Kind)
	assert.Contains(t, derr.Message, "Broken.xml")
}

func TestParseFile_MissingClassName(t *testing.T) {
	path := writeClassFile(t, t.TempDir(), "Anon.xml",
		`<class><brief_description>No name.</brief_description></class>`)

	_, err := New().ParseFile(path)
	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrParse, derr.Kind)
}

func TestParseFile_SkipsNamelessMembers(t *testing.T) {
	path := writeClassFile(t, t.TempDir(), "Sparse.xml", `<class name="Sparse">
	<methods><method><description>no name</description></method></methods>
	<members><member type="int">no name</member></members>
</class>`)

	doc, err := New().ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Methods)
	assert.Empty(t, doc.Properties)
}

func TestParseCorpus(t *testing.T) {
	dir := t.TempDir()
	writeClassFile(t, dir, "Object.xml", minimalClass("Object", ""))
	writeClassFile(t, dir, "Node.xml", nodeXML)
	writeClassFile(t, dir, "Button.xml", minimalClass("Button", "Node"))

	docs, err := New().ParseCorpus(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// File-name order, not declaration order.
	assert.Equal(t, "Button", docs[0].Name)
	assert.Equal(t, "Node", docs[1].Name)
	assert.Equal(t, "Object", docs[2].Name)
}

func TestParseCorpus_EmptyDirectory(t *testing.T) {
	_, err := New().ParseCorpus(context.Background(), t.TempDir())

	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrInvalidConfig, derr.Kind)
}

func TestParseCorpus_MalformedFileAbortsBatch(t *testing.T) {
	dir := t.TempDir()
	writeClassFile(t, dir, "Node.xml", nodeXML)
	writeClassFile(t, dir, "Object.xml", "<class")

	_, err := New().ParseCorpus(context.Background(), dir)
	var derr *types.DocError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, types.ErrParse, derr.Kind)
	assert.Contains(t, derr.Message, "Object.xml")
}

func TestParseCorpus_Cancellation(t *testing.T) {
	dir := t.TempDir()
	writeClassFile(t, dir, "Node.xml", nodeXML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ParseCorpus(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseCorpus_IgnoresNonXMLFiles(t *testing.T) {
	dir := t.TempDir()
	writeClassFile(t, dir, "Node.xml", nodeXML)
	writeClassFile(t, dir, "README.md", "# not a class file")

	docs, err := New().ParseCorpus(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
