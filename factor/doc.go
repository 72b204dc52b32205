// Package factor implements FactorStore: the pair of
// dense row-major matrices U (user factors) and V (item factors) that every
// trainer variant reads and mutates row-wise. FactorStore owns its storage;
// PreferenceIndex ids index directly into U and V rows.
package factor
