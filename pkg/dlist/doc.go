// Package dlist implements a doubly-linked list on top of the keycell
// primitives. Forward links are strong references and backward links are
// weak, which avoids an ownership cycle between adjacent nodes: when a
// node's last strong handle is released, its neighbors' weak back-links
// simply report absence.
//
// All operations take the owner whose brand stamps the list's cells. The
// list logic is variant-agnostic: any keycell.Owner works, and the same
// code serves the dynamic, static, scoped, and family-owner variants.
package dlist
