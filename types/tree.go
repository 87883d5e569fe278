package types

import "strings"

// TreeString renders the tag tree rooted at root, one tag per line, children
// indented under their parent. Abstract tags are marked so the reader can see
// which nodes may classify a value.
func TreeString(root *Tag) string {
	var sb strings.Builder
	writeTree(&sb, root, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, t *Tag, depth int) {
	sb.WriteString(strings.Repeat("    ", depth))
	sb.WriteString(t.String())
	if t.abstract {
		sb.WriteString(" (abstract)")
	}
	sb.WriteString("\n")
	for _, child := range t.Children() {
		writeTree(sb, child, depth+1)
	}
}
