/*
Package orm provides an easy to use db wrapper.

The state space is split into prefixed sections called buckets.

Each bucket holds only one type of object stored under its primary key. A
bucket may declare secondary indexes, unique or not, that are kept up to date
on every save and delete. Sequences provide monotonically increasing
identifiers.
*/
package orm
