package segtree

import (
	"fmt"
	"io"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). format renders element values into node labels;
// if nil, values are printed with %v.
func (t *Tree[S]) Dot(w io.Writer, format func(S) string) {
	if format == nil {
		format = func(v S) string { return fmt.Sprintf("%v", v) }
	}
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return
	}
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	n := t.Cap()
	nodelist, edgelist := "", ""
	for ix := range t.storage {
		isleaf := ix >= n-1
		label := format(t.storage[ix])
		if isleaf {
			pos := ix - (n - 1)
			label = fmt.Sprintf("%s\\n@%d", label, pos)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ix, 2*ix+1)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ix, 2*ix+2)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ix, label,
			nodeDotStyles(isleaf, isleaf && ix-(n-1) >= t.length))
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool, padding bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
		if padding {
			s += ",fillcolor=\"#eeeeee\""
		} else {
			s += ",fillcolor=white"
		}
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
