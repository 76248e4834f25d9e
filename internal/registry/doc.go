// Package registry is the component descriptor store consulted during
// validation and code generation.
//
// Descriptors are populated before the build starts, from HCL manifest files
// discovered under the manifests directory. Each descriptor carries its
// component's precomputed category (visual or service) and an explicit list
// of validation rules, so neither the validator nor the generator ever
// inspects component source or walks an inheritance chain.
package registry
