// Package pipeline implements the concurrent dishwashing engine: four
// chained stage queues, one persistent worker per stage, and a coordinator
// that feeds dishes, waits on each queue's drain barrier in stage order,
// then signals cooperative shutdown and joins the workers.
//
// The synchronization contract lives in StageQueue: an explicit pending
// counter tracks dishes enqueued but not yet acknowledged, and Drain blocks
// until it reaches zero. Workers acknowledge only after the dish has been
// handed to the next stage, so a returned Drain proves every dish has fully
// exited that stage. The ordered drain sequence is the sole cross-stage
// completion guarantee; within a queue, dequeue order is FIFO.
package pipeline
