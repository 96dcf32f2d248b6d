// Package modules contains the self-contained application features.
//
// Each subdirectory is a module implementing module.Module: admin for course
// owners and catalog for learners. Modules are listed in
// internal/server/modules.go and booted by the server at startup.
package modules
