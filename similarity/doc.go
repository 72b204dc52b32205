// Package similarity implements the Oracle contract: a symmetric function
// sim(a,b) over dense item ids, used by SimMF's pairwise-similarity
// coupling. An unknown pair means "no signal" and Sim returns 0 for it;
// SimMF uses that 0 as the pair's similarity target like any other score.
package similarity
