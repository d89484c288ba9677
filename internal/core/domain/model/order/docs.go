// Package order contains the order aggregate: the order header together with
// its shipping address and order lines. The aggregate is the unit of
// consistency for the order creation workflow; its total amount is always the
// sum of its line subtotals, and its status follows an explicit state machine.
package order
