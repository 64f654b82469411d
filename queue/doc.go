/*
Package queue provides the work list of node developments a tree is grown
from, and the Task type representing each of them.
*/
package queue
