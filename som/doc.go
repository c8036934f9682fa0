// Package som defines the Self-Organizing Map lattice: a width×height grid of
// prototype neurons, the lattice topology that measures distances between
// grid positions, and the neighbourhood and decay functions shared by every
// SOM learning algorithm.
//
// Two distances coexist and must not be confused:
//   - lattice distance: between grid positions, fixed by the Topology
//   - metric distance: between prototypes in feature space, fixed by the vector.Metric
//
// Topologies:
//   - Rectangular: neuron (x,y) sits at (x, y)
//   - Hexagonal: odd rows shift right by ½, rows are √3/2 apart, so every
//     interior neuron has six equidistant neighbours
//
// Neurons are stored and iterated in row-major order (y outer, x inner);
// BestMatchingUnit breaks ties by that order.
package som
