package dogstatsd

/*

Copyright (c) 2017 Andrey Smirnov

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

// initialBufSize covers a namespaced, tagged metric without growing; bigger
// datagrams reallocate once and the grown buffer stays in the pool
const initialBufSize = 512

// getBuf takes a datagram buffer from the pool, or allocates a fresh one
func (c *Client) getBuf() []byte {
	select {
	case buf := <-c.bufPool:
		return buf[:0]
	default:
		return make([]byte, 0, initialBufSize)
	}
}

// putBuf returns a written-out buffer to the pool for reuse
func (c *Client) putBuf(buf []byte) {
	select {
	case c.bufPool <- buf:
	default:
		// pool is full, let GC handle the buf
	}
}
