/*
Package will implements a registry of digital wills.

A will is created by its owner and declares a document reference, a list of
beneficiaries with percentage shares and an inactivity period. Each will has
a custody account that can be funded with a regular cash transfer. When the
owner does not record any activity for longer than the inactivity period,
anyone can execute the will. Execution splits the native currency held by the
custody account between the beneficiaries, proportionally to their shares.
Any division remainder stays in the custody account.

Only the owner can modify a will. There is no way to delete a will.
*/
package will
