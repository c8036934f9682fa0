// Package learning trains a som.Map.
//
// Algorithms:
//   - Batch: epoch-based: every neuron becomes the neighbourhood-weighted
//     mean of the inputs mapped around it. An ordering phase holds sigma at
//     its initial value, then a converging phase decays it exponentially.
//     TrainWeighted/EpochWeighted scale each sample by weight/maxWeight,
//     which is how StreamART2A micro-categories (FromCategories) train a map.
//   - PLSOM: online, parameter-less: the learning rate and radius adapt
//     to the BMU error relative to a running estimate of the input diameter.
//
// Sigma values are fractions of the lattice diagonal (som.Map.Diagonal).
package learning
