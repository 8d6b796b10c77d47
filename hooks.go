package routekit

import "context"

// hookPipeline holds the ordered hook lists for each dispatch phase. The
// request phases (pre-routing, post-routing, pre-handler) and the
// post-handler phase apply their hooks sequentially, each hook receiving
// the previous hook's output; the first failure aborts the phase. The
// error phase is first-success-wins instead.
type hookPipeline struct {
	preRouting  []RequestHook
	postRouting []RequestHook
	preHandler  []RequestHook
	postHandler []ResponseHook
	errorHooks  []ErrorHook
}

// runRequestHooks threads the request through the given hooks in
// registration order. Cancellation is observed between hooks.
func runRequestHooks(ctx context.Context, hooks []RequestHook, req *Request) (*Request, error) {
	cur := req
	for _, hook := range hooks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := hook(ctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// runPostHandler threads the response through the post-handler hooks in
// registration order.
func (p *hookPipeline) runPostHandler(ctx context.Context, res *Response) (*Response, error) {
	cur := res
	for _, hook := range p.postHandler {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := hook(ctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// runErrorHooks tries each error hook in registration order. The first hook
// to succeed short-circuits with its response; a failing hook's error
// becomes the new current error for the remaining hooks. If no hook
// succeeds the final error is returned for the caller to map to a default
// response.
func (p *hookPipeline) runErrorHooks(ctx context.Context, err error) (*Response, error) {
	cur := err
	for _, hook := range p.errorHooks {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cur
		}
		res, herr := hook(ctx, cur)
		if herr == nil {
			return res, nil
		}
		cur = herr
	}
	return nil, cur
}
