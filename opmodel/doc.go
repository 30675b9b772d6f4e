// Package opmodel is the framework-implementation collaborator boundary:
// it answers "how many MACs does this node perform" and "which weight
// attribute is this op's kernel", without the RUC ever inspecting a
// node's concrete operator type by reflection. A Node carries only an
// OpKind tag (graph.OpKind); Implementation resolves behavior from that
// tag, and Registry is a reference, table-driven Implementation built by
// registering one entry per op kind.
package opmodel
