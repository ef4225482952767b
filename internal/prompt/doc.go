// Package prompt fills a form interactively.
//
// [Fill] walks a form definition field by field through a [Driver], feeds
// each answer into a form.State the same way a UI would (change, then blur),
// validates, and asks again only for the fields that failed. The default
// driver is backed by survey; tests script a fake one.
package prompt
