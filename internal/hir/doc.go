// Package hir provides the annotation vocabulary attached to high-level IR
// entities.
//
// Annotations are a closed set of metadata items. The only variant today is
// MangleAs, which overrides the externally visible symbol name of the entity
// it decorates. Annotations are not restricted to functions; which entities
// honor them is up to the passes that read them.
package hir
