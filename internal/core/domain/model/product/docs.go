// Package product contains the catalog aggregate.
//
// Stock is the only field mutated by delivery finalization; every change to it
// goes through DecreaseStock or Update, both of which refuse negative values.
package product
