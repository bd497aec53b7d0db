package domain

type LessonStatus string

const (
	LessonConfirmed LessonStatus = "confirmed"
	LessonPending   LessonStatus = "pending"
	LessonCanceled  LessonStatus = "canceled"
)

// ValidLessonStatuses is the canonical set of accepted lesson status strings.
var ValidLessonStatuses = map[LessonStatus]bool{
	LessonConfirmed: true, LessonPending: true, LessonCanceled: true,
}

type TaskStatus string

const (
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceRemind  InvoiceStatus = "remind"
)

// ReceivableStatuses are the invoice statuses still counted as outstanding.
// Paid invoices are the only ones excluded from the receivables total.
var ReceivableStatuses = map[InvoiceStatus]bool{
	InvoicePending: true, InvoiceOverdue: true, InvoiceRemind: true,
}
