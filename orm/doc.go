/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Keys are prefixed with the bucket name, so buckets never collide.
* Easy queries for one and iteration.

ModelBucket adds type safe access on top of a Bucket, and compare-and-swap
updates for models that carry a version.
*/
package orm
