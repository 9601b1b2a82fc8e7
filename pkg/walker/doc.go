// Package walker implements the stochastic carving agent: a stateful walk
// toward an ordered sequence of waypoints that stamps a pair of kernels
// (an inner "empty" brush and an outer "freeze" margin) into a gridmap.Map
// at every step, with kernel fade/mutate/pulse dynamics and periodic
// platform placement.
package walker
